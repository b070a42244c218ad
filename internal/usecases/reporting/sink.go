package reporting

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// LineSink recebe as linhas do relatório na ordem em que são emitidas
type LineSink func(line string)

// BufferSink acumula as linhas em memória
type BufferSink struct {
	lines []string
}

// NewBufferSink cria um BufferSink vazio
func NewBufferSink() *BufferSink {
	return &BufferSink{lines: make([]string, 0, 64)}
}

// Sink retorna a função de emissão ligada ao buffer
func (b *BufferSink) Sink() LineSink {
	return func(line string) {
		b.lines = append(b.lines, line)
	}
}

// Lines retorna as linhas emitidas até agora
func (b *BufferSink) Lines() []string {
	return b.lines
}

// String junta as linhas em um único texto markdown
func (b *BufferSink) String() string {
	return strings.Join(b.lines, "\n")
}

// LogSink emite cada linha como log de nível info
func LogSink(entry *logrus.Entry) LineSink {
	return func(line string) {
		if line == "" {
			return
		}
		entry.Info(line)
	}
}
