package ports

// Logger é o log estruturado usado por serviços e handlers.
// args são pares chave/valor no formato do slog; With cria um logger filho
// com campos fixos, como source=client para os logs do frontend.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}
