package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tomroth04/ethcal"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := ethcal.LoadConfig(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	conv := ethcal.NewConverter(ethcal.WithLogger(log.Logger))
	cli := commandLine{
		out:  os.Stdout,
		conv: conv,
		cls: ethcal.NewClassifier(
			ethcal.WithConverter(conv),
			ethcal.WithWeekendDays(cfg.WeekendDays...),
		),
	}
	if cfg.APIBaseURL != "" {
		cli.client = ethcal.NewClient(cfg.APIBaseURL, cfg.School, cfg.APIToken)
	}

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
