package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/psrlog/psrlog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – every framework writes to its own file in b.TempDir so the
// comparison includes the file write. psrlog additionally fsyncs every
// line; that is the documented behaviour, not benchmark overhead.
// ---------------------------------------------------------------------------

func tmpFile(b *testing.B) string {
	b.Helper()
	return filepath.Join(b.TempDir(), "bench.log")
}

// newPsrlogLogger returns a psrlog Root writing to path.
func newPsrlogLogger(b *testing.B, path string) *logger.Root {
	log, err := logger.New(path)
	if err != nil {
		b.Fatal(err)
	}
	return log
}

// newZapLogger returns a zap.Logger writing JSON to path.
func newZapLogger(b *testing.B, path string) *zap.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		b.Fatal(err)
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(core)
}

// newZerologLogger returns a zerolog.Logger writing to path.
func newZerologLogger(b *testing.B, path string) zerolog.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		b.Fatal(err)
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

// newLogrusLogger returns a logrus.Logger writing to path.
func newLogrusLogger(b *testing.B, path string) *logrus.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		b.Fatal(err)
	}
	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	return l
}

// ---------------------------------------------------------------------------
// Plain message
// ---------------------------------------------------------------------------

func BenchmarkPsrlog_Message(b *testing.B) {
	log := newPsrlogLogger(b, tmpFile(b))
	defer log.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message")
	}
}

func BenchmarkZap_Message(b *testing.B) {
	log := newZapLogger(b, tmpFile(b))
	defer log.Sync()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message")
	}
}

func BenchmarkZerolog_Message(b *testing.B) {
	log := newZerologLogger(b, tmpFile(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info().Msg("benchmark message")
	}
}

func BenchmarkLogrus_Message(b *testing.B) {
	log := newLogrusLogger(b, tmpFile(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message")
	}
}

// ---------------------------------------------------------------------------
// Message with structured context
// ---------------------------------------------------------------------------

func BenchmarkPsrlog_Context(b *testing.B) {
	log := newPsrlogLogger(b, tmpFile(b))
	defer log.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message", logger.Context{"order_id": 42, "state": "paid"})
	}
}

func BenchmarkZap_Context(b *testing.B) {
	log := newZapLogger(b, tmpFile(b))
	defer log.Sync()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message", zap.Int("order_id", 42), zap.String("state", "paid"))
	}
}

func BenchmarkZerolog_Context(b *testing.B) {
	log := newZerologLogger(b, tmpFile(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info().Int("order_id", 42).Str("state", "paid").Msg("benchmark message")
	}
}

func BenchmarkLogrus_Context(b *testing.B) {
	log := newLogrusLogger(b, tmpFile(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.WithFields(logrus.Fields{"order_id": 42, "state": "paid"}).Info("benchmark message")
	}
}

// ---------------------------------------------------------------------------
// Channel fan-out: repeated Fork lookups plus the write
// ---------------------------------------------------------------------------

func BenchmarkPsrlog_ForkAndLog(b *testing.B) {
	log := newPsrlogLogger(b, tmpFile(b))
	defer log.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Fork("billing").Error("payment failed")
	}
}
