package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	otfeyda "github.com/nsip/otf-eyda"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	// optional, values already in the environment win
	_ = godotenv.Load()

	fs := flag.NewFlagSet("otf-eyda", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this scoring service instance")
		serviceID   = fs.String("id", "", "id for this scoring service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		questions   = fs.String("questions", "./data/questions.json", "assessment document, file path or http(s) url")
		currentYear = fs.Int("currentYear", 0, "the scoring year, 0 uses the current calendar year")
		history     = fs.Int("years", 2, "number of earlier years tracked alongside the current year")
		seed        = fs.Int64("seed", 0, "random seed for sample data, 0 seeds from the clock")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("OTF_EYDA_SRVC"),
	); err != nil {
		fmt.Printf("\nCannot read otf-eyda configuration:\n%s\n\n", err)
		return
	}

	opts := []otfeyda.Option{
		otfeyda.Name(*serviceName),
		otfeyda.ID(*serviceID),
		otfeyda.Host(*serviceHost),
		otfeyda.Port(*servicePort),
		otfeyda.Questions(*questions),
		otfeyda.CurrentYear(*currentYear),
		otfeyda.History(*history),
		otfeyda.Seed(*seed),
	}

	srvc, err := otfeyda.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create otf-eyda service:\n%s\n\n", err)
		return
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\notf-eyda shutting down")
		srvc.Shutdown()
		fmt.Println("otf-eyda closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
