package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	BackendList = "list"
	BackendMap  = "map"
)

// Config описывает конфигурацию сервиса, загружаемую из TOML-файла
type Config struct {
	Addr      string `toml:"addr"`       // Адрес HTTP-сервера
	Backend   string `toml:"backend"`    // Хранилище элементов: "list" или "map"
	InitialID int64  `toml:"initial_id"` // Идентификатор первого добавляемого элемента
	LogLevel  string `toml:"log_level"`
}

// Default возвращает конфигурацию по умолчанию, используемую когда файл не задан
func Default() Config {
	return Config{
		Addr:      ":8080",
		Backend:   BackendList,
		InitialID: 1,
		LogLevel:  "info",
	}
}

// Load загружает конфигурацию из TOML-файла по указанному пути.
// Незаданные в файле поля получают значения по умолчанию
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("backend") {
		cfg.Backend = strings.ToLower(strings.TrimSpace(raw.Backend))
	}
	if meta.IsDefined("initial_id") {
		cfg.InitialID = raw.InitialID
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("config missing addr")
	}
	if cfg.Backend != BackendList && cfg.Backend != BackendMap {
		return fmt.Errorf("unknown backend %q (need %q or %q)", cfg.Backend, BackendList, BackendMap)
	}
	return nil
}
