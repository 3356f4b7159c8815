// Package logger is the public API of psrlog. Most users only need to
// import this package.
//
// A Root owns the open log file and a registry of channel proxies.
// Construct one with the path to the log file:
//
//	log, err := logger.New("/var/log/my-app.log")
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	log.Info("client registration started", logger.Context{"client_id": id})
//
// Named channels let subsystems write to the same file under their own
// tag. Fork returns a lightweight proxy bound to the channel name;
// forking the same name again returns the identical proxy:
//
//	billing := log.Fork("billing")
//	billing.Critical("payment failed", logger.Context{"order_id": 42})
//
// Both Root and the proxies returned by Fork implement the Logger
// contract, so code that only needs to emit log lines can accept a
// Logger and stay unaware of which channel it writes to. Leveled calls
// made directly on the Root go through the default "app" channel.
//
// Every call appends exactly one line and syncs the file before
// returning. Failures — an unwritable file, a closed Root, a context
// value that cannot be JSON-encoded — are returned to the caller;
// nothing is retried or swallowed.
package logger
