package ports

// Logger é o log estruturado usado por serviços e handlers.
// args seguem a convenção do slog: pares chave/valor.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With devolve um logger que inclui args em todas as entradas
	With(args ...any) Logger
}
