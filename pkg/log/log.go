// Package log configura o logrus usado para logs de diagnóstico.
// A saída voltada ao usuário continua no pkg/console.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New cria um logger de texto; com verbose o nível é debug, senão warning.
func New(verbose bool) *logrus.Logger {
	return NewWithOutput(verbose, os.Stderr)
}

// NewWithOutput é como New, mas escreve em out.
func NewWithOutput(verbose bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		PadLevelText:    true,
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// Discard retorna um logger que não escreve nada. Útil em testes.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
