package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/minforge/jsmin/internal/logger"
)

// A nil timer is valid and does nothing, so callers don't need to check
// whether "--timing" was passed
type Timer struct {
	data []timerData
}

type timerData struct {
	time  time.Time
	name  string
	isEnd bool
}

func (t *Timer) Begin(name string) {
	if t != nil {
		t.data = append(t.data, timerData{
			name: name,
			time: time.Now(),
		})
	}
}

func (t *Timer) End(name string) {
	if t != nil {
		t.data = append(t.data, timerData{
			name:  name,
			time:  time.Now(),
			isEnd: true,
		})
	}
}

func (t *Timer) Log(log logger.Log) {
	if t == nil {
		return
	}

	type pair struct {
		timerData
		index int
	}

	var notes []string
	var stack []pair
	indent := 0

	for _, item := range t.data {
		if !item.isEnd {
			stack = append(stack, pair{timerData: item, index: len(notes)})
			notes = append(notes, "")
			indent++
		} else {
			indent--
			last := len(stack) - 1
			top := stack[last]
			stack = stack[:last]
			if item.name != top.name {
				panic("Internal error")
			}
			notes[top.index] = fmt.Sprintf("%s%s: %s",
				strings.Repeat("  ", indent),
				top.name,
				item.time.Sub(top.time))
		}
	}

	log.AddInfoWithNotes("Timing information", notes)
}
