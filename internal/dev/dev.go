package dev

import (
	tea "charm.land/bubbletea/v2"
	"fmt"
	"github.com/robinovitch61/vlist/internal/message"
	"gopkg.in/natefinch/lumberjack.v2"
	"log"
	"os"
	"sync"
)

var debugSet = os.Getenv("VLIST_DEBUG")
var debugPath = os.Getenv("VLIST_DEBUG_PATH")

var (
	logger     *log.Logger
	loggerOnce sync.Once
)

func Debug(msg string) {
	if debugSet == "" {
		return
	}
	loggerOnce.Do(func() {
		if debugPath == "" {
			debugPath = "vlist.log"
		}
		// scrolling through a big list logs a lot, so cap what's kept on disk
		logger = log.New(&lumberjack.Logger{
			Filename:   debugPath,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}, "", log.Ldate|log.Lmicroseconds)
	})
	logger.Printf("%q", msg)
}

func DebugUpdateMsg(component string, msg tea.Msg) {
	switch msg.(type) {
	case message.ScrollSettledMsg, tea.MouseMotionMsg:
	// skip logging messages that are too frequent
	default:
		Debug("--")
		Debug(fmt.Sprintf("Update %s: %T", component, msg))
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
			Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
		}
	}
}
