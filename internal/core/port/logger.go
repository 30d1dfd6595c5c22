package port

// Fields - структурированные данные для записи в лог.
type Fields map[string]interface{}

// LoggerPort - контракт системы логирования.
// Ядро не знает, куда именно уходят логи (stdout, Fluent Bit или оба сразу).
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)

	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields возвращает новый логгер с добавленными полями (trace_id, use_case и т.п.).
	WithFields(fields Fields) LoggerPort
}
