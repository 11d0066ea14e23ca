package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

// go run main.go                      serve the http api
// go run main.go jobs.csv [policy]    print the schedule for a csv of burst,arrival[,priority];
//                                     policy defaults to scheduler.default_policy, "all" compares every policy
func main() {
	cfg := config.GetSchedulerConfig()

	if len(os.Args) > 1 {
		if err := runFile(os.Stdout, cfg, os.Args[1:]...); err != nil {
			log.Fatal(err)
		}
		return
	}

	app := fiber.New()
	api.SetupRoutes(app, api.NewSchedulerHandlerImpl(cfg))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func runFile(w io.Writer, cfg *config.SchedulerConfig, args ...string) error {
	jobs, err := loader.LoadJobsFile(args[0])
	if err != nil {
		return err
	}

	selector := cfg.DefaultPolicy
	if len(args) > 1 {
		selector = args[1]
	}

	if strings.EqualFold(selector, "all") {
		all, err := schedulers.ScheduleAllJobs(jobs, cfg.RoundRobinTimeQuantum)
		if err != nil {
			return err
		}
		for _, response := range all {
			report.Render(w, response)
		}
		report.RenderComparison(w, all)
		return nil
	}

	policy, err := schedulers.ParsePolicy(selector, cfg.RoundRobinTimeQuantum)
	if err != nil {
		return err
	}
	response, err := schedulers.ScheduleJobs(jobs, policy)
	if err != nil {
		return err
	}
	report.Render(w, response)
	return nil
}
