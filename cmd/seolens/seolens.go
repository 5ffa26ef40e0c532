package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seolens/seolens"
	"github.com/seolens/seolens/config"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Println(comment, err)
		os.Exit(1)
	}
}

func main() {
	flagURL := flag.String("url", "", "analyze the given url once and print a report")
	flag.Parse()

	if *flagURL != "" {
		s := seolens.NewService(config.Default())
		analysis, errAnalyze := s.Analyze(*flagURL)
		must("could not analyze "+*flagURL+":", errAnalyze)
		seolens.WriteReport(os.Stdout, analysis)
		return
	}

	if len(flag.Args()) != 1 {
		fmt.Println("usage:", os.Args[0], "path/to/config.yaml")
		fmt.Println("   or:", os.Args[0], "-url https://example.com/")
		os.Exit(1)
	}
	conf, errConf := config.Get(flag.Arg(0))
	must("config error:", errConf)
	spew.Dump(conf)

	s := seolens.NewService(conf)
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", seolens.GetAnalyzeHandler(s))
	mux.HandleFunc("/report", seolens.GetReportHandler(s))
	mux.Handle("/metrics", promhttp.Handler())

	fmt.Println("listening on", conf.Addr)
	log.Fatal(http.ListenAndServe(conf.Addr, mux))
}
