package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/monserver"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/mercuriomkt/messenger-webhook/internal/app"
	"github.com/mercuriomkt/messenger-webhook/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// @title           Messenger Webhook
// @version         1.0
//
// @BasePath  /
func main() {
	logger := logging.GetAndSetDefaultLogger("messenger-webhook")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-mainCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		cancel()
	}()

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)

	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := env.LoadSettings[config.Settings](*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		log.Fatalf("invalid settings: %s", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	monApp := monserver.NewMonitoringServer(&logger, settings.EnablePprof)
	logger.Info().Str("port", strconv.Itoa(settings.MonPort)).Msgf("Starting monitoring server")
	runner.RunHandler(runnerCtx, runnerGroup, monApp, ":"+strconv.Itoa(settings.MonPort))

	webApp, err := app.CreateServers(runnerCtx, &settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create servers")
	}

	addr := ":" + strconv.Itoa(settings.Port)
	if settings.TLSEnabled() {
		tlsConfig, err := app.LoadTLSConfig(settings.TLSCertFile, settings.TLSKeyFile, settings.TLSChainFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load TLS certificates")
		}
		logger.Info().Str("port", strconv.Itoa(settings.Port)).Msgf("Starting HTTPS web server")
		app.RunFiberTLS(runnerCtx, runnerGroup, webApp, addr, tlsConfig)
	} else {
		logger.Info().Str("port", strconv.Itoa(settings.Port)).Msgf("Starting web server")
		runner.RunFiber(runnerCtx, runnerGroup, webApp, addr)
	}

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
