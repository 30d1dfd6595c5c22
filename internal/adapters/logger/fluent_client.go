package logger_adapter

import (
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// FluentConfig - параметры подключения к Fluent Bit.
type FluentConfig struct {
	Host      string
	Port      int
	TagPrefix string // Например, "six-cities"
}

// NewFluentClient создает клиента Fluent Bit. Соединение устанавливается
// асинхронно, поэтому ошибки доставки проявятся только при отправке.
func NewFluentClient(cfg FluentConfig) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluent tag prefix is required")
	}

	client, err := fluent.New(fluent.Config{
		FluentHost:         cfg.Host,
		FluentPort:         cfg.Port,
		TagPrefix:          cfg.TagPrefix,
		Async:              true,
		MaxRetry:           3,
		SubSecondPrecision: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent client: %w", err)
	}
	return client, nil
}
