package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"listServer/config"
	"listServer/controllers/listService"
	"listServer/gates/storage"
	"listServer/gates/storage/list"
	"listServer/gates/storage/mp"
	"listServer/pkg"
)

func main() {
	configPath := flag.String("config", "", "путь к TOML-файлу конфигурации")
	demo := flag.Bool("demo", false, "построить демонстрационную цепочку и выйти")
	flag.Parse()

	// Загрузка конфигурации: без файла используются значения по умолчанию
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	level, ok := pkg.ParseLevel(cfg.LogLevel)
	if !ok {
		level = zerolog.InfoLevel
	}
	logger := pkg.InitLogger("listServer", level)

	if *demo {
		runDemo(logger, cfg.InitialID)
		return
	}

	// Выбор хранилища
	var st storage.Storage
	switch cfg.Backend {
	case config.BackendMap:
		st = mp.NewMap(cfg.InitialID)
	default:
		st = list.NewList(cfg.InitialID)
	}

	ls := listService.NewListService(cfg.Addr, st)

	signalCh := make(chan os.Signal, 1)     // канал для получения сигнала
	signal.Notify(signalCh, syscall.SIGINT) // привязываем его к сигналу SIGINT
	go func() {
		<-signalCh
		_ = ls.Close()
	}()

	ls.Start()
}

// runDemo строит цепочку из четырех узлов, обходит ее и освобождает.
// PushFront значений 2, 13, 5, 3 дает обход "3 -> 5 -> 13 -> 2 -> null"
func runDemo(logger zerolog.Logger, initID int64) {
	l := list.NewList(initID)
	for _, value := range []int64{2, 13, 5, 3} {
		if _, err := l.PushFront(value); err != nil {
			logger.Fatal().Err(err).Msg("push front failed")
		}
	}

	fmt.Println(l.String())

	l.Clear()
	logger.Info().
		Int64("allocated", l.Allocated()).
		Int64("released", l.Released()).
		Str("chain", l.String()).
		Msg("chain cleared")
}
