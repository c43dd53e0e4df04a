package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

var debugEnabled int32

// SetDebug toggles Debug output; off by default.
func SetDebug(enabled bool) {
	var v int32
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&debugEnabled, v)
}

func IsDebug() bool {
	return atomic.LoadInt32(&debugEnabled) == 1
}

func Debug(service string, message string) {
	DebugWith(service, message, nil)
}

func DebugWith(service string, message string, extra Context) {
	if !IsDebug() {
		return
	}

	context := make(Context, len(extra)+1)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	for k, v := range extra {
		context[k] = v
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	fmt.Println(string(data))
}
