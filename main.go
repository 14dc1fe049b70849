package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"rpncalc/luafn"
	"rpncalc/remote"
	"rpncalc/rpn"
)

var (
	prometheusUrl *string
	configFile    *string
)

func init() {
	prometheusUrl = flag.String("prometheus.url", "", "prometheus http url results are written to")
	configFile = flag.String("config.file", DefaultConfigFile, "config file location")
}

// setupSession preloads variables and Lua functions from the config.
func setupSession(root *ConfigRoot) (*rpn.Session, error) {
	session := rpn.NewSession()
	for name, value := range root.Variables {
		session.Symbols.Define(name, value)
	}

	if root.Functions.Script != "" {
		runtime, err := luafn.LoadFile(root.Functions.Script)
		if err != nil {
			return nil, err
		}
		if err := runtime.Register(session.Functions, root.Functions.Names...); err != nil {
			return nil, err
		}
		log.Printf("registered lua functions: %v", strings.Join(root.Functions.Names, ", "))
	}
	return session, nil
}

func main() {
	flag.Parse()

	if configFile == nil || *configFile == "" {
		fmt.Println("missing value: config.file")
		os.Exit(1)
	}

	root, err := loadConfig(*configFile, *configFile != DefaultConfigFile)
	if err != nil {
		log.Fatalf("error reading config %v: %v", *configFile, err)
	}
	if prometheusUrl != nil && *prometheusUrl != "" {
		root.RemoteWrite.Url = *prometheusUrl
	}

	session, err := setupSession(root)
	if err != nil {
		log.Fatal(err)
	}

	var sink ResultSink
	if root.RemoteWrite.Url != "" {
		writer, err := remote.NewWriter(root.RemoteWrite.Url, root.RemoteWrite.Series)
		if err != nil {
			log.Fatal(err)
		}
		sink = writer
	}

	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)

	historyPath := expandHome(root.HistoryFile)
	if f, err := os.Open(historyPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		sig := <-sigc
		log.Printf("%v received, exiting", sig)
		cancel()
		ln.Close()
		os.Exit(130)
	}()

	repl := &Repl{
		session:  session,
		reader:   ln,
		out:      os.Stdout,
		errOut:   os.Stderr,
		prompt:   root.Prompt,
		failFast: root.FailFast,
		sink:     sink,
		history:  ln.AppendHistory,
	}
	status := repl.Run(ctx)

	if f, err := os.Create(historyPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	ln.Close()
	os.Exit(status)
}
