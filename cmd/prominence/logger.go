package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/muka28/TopographicProminence/internal/config"
)

// logger emits leveled lines via plain fmt/encoding-json: text mode
// mirrors log.Printf's leveled-prefix convention, json mode emits one
// encoding/json object per line for log-aggregation tooling.
type logger struct {
	w      io.Writer
	level  string
	format config.LogFormat
}

var levelRank = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3}

func newLogger(w io.Writer, cfg config.Config) *logger {
	return &logger{w: w, level: cfg.LogLevel, format: cfg.LogFormat}
}

func (l *logger) infof(format string, args ...any)  { l.logf("info", format, args...) }
func (l *logger) errorf(format string, args ...any) { l.logf("error", format, args...) }

func (l *logger) logf(level, format string, args ...any) {
	if levelRank[level] < levelRank[l.level] {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.format == config.LogFormatJSON {
		line, err := json.Marshal(struct {
			Level string `json:"level"`
			Msg   string `json:"msg"`
		}{level, msg})
		if err != nil {
			return
		}
		fmt.Fprintln(l.w, string(line))
		return
	}
	fmt.Fprintf(l.w, "%s: %s\n", level, msg)
}
