package main

import (
	"flag"
	"fmt"
	"os"

	"webservice/internal/logger"
	"webservice/internal/vcs"

	"github.com/joho/godotenv"
)

var (
	buildRevision = vcs.Version()
)

type config struct {
	port           int
	serviceName    string
	serviceVersion string
	limiter        struct {
		rps     float64
		burst   int
		enabled bool
	}
}

type application struct {
	config config
	logger *logger.Logger
}

//	@title			web-service
//	@description	Identity and health reporting API for deployment-strategy demos.
//	@description	The reported name and version come from the process environment,
//	@description	so each rollout variant answers with its own identity.
func main() {
	_ = godotenv.Load(".env")

	log := logger.New(os.Stdout)
	defer log.Sync()

	port, err := getEnvInt("PORT", 5000)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	limiterRPS, err := getEnvFloat("LIMITER_RPS", 2)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	limiterBurst, err := getEnvInt("LIMITER_BURST", 4)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	limiterEnabled, err := getEnvBool("LIMITER_ENABLED", false)
	if err != nil {
		log.Fatalf("Invalid configuration: %s", err)
	}

	var cfg config

	// Server
	flag.IntVar(&cfg.port, "port", port, "Server port")
	flag.StringVar(&cfg.serviceName, "service-name", getEnvString("SERVICE_NAME", "web-service"), "Reported service name")
	flag.StringVar(&cfg.serviceVersion, "service-version", getEnvString("SERVICE_VERSION", "unknown"), "Reported service version")

	// Limiter
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", limiterRPS, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", limiterBurst, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", limiterEnabled, "Enable rate limiter")

	displayVersion := flag.Bool("version", false, "Display build revision and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Revision:\t%s\n", buildRevision)
		os.Exit(0)
	}

	if cfg.port < 1 || cfg.port > 65535 {
		log.Fatalf("Invalid configuration: port %d is outside 1-65535", cfg.port)
	}

	app := &application{
		config: cfg,
		logger: log,
	}

	err = app.serve()
	if err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
