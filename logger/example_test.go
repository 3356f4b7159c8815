package logger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/psrlog/psrlog/logger"
)

func Example() {
	dir, err := os.MkdirTemp("", "psrlog")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "my-app.log")

	log, err := logger.New(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	// Direct calls go through the default "app" channel.
	log.Info("client registration started", logger.Context{"client_id": 7})

	// Subsystems fork their own channel into the same file.
	notifications := log.Fork("notification_subsystem")
	notifications.Critical("unable to send notification", logger.Context{"user_id": 42})

	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	fmt.Println(len(lines))
	fmt.Println(strings.SplitN(lines[1], "] ", 2)[1])
	// Output:
	// 2
	// notification_subsystem.CRITICAL: unable to send notification {"user_id":42} []
}

func ExampleRoot_Fork() {
	dir, err := os.MkdirTemp("", "psrlog")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	log, err := logger.New(filepath.Join(dir, "my-app.log"))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	// Forking the same channel twice yields the identical proxy.
	fmt.Println(log.Fork("billing") == log.Fork("billing"))
	// Output: true
}
