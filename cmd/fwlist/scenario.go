package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/davidvella/forwardlist"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	errUnknownOp     = errors.New("unknown operation")
	errUnknownFormat = errors.New("unknown scenario format")
)

// Scenario describes a list and the operations applied to it.
type Scenario struct {
	// Name labels the scenario in the output, defaults to the file name.
	Name string `toml:"name" yaml:"name"`
	// Limit is the node limit of the list, 0 for none.
	Limit int `toml:"limit" yaml:"limit"`
	// Values are the initial contents.
	Values []int64 `toml:"values" yaml:"values"`
	// Steps are applied in order.
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Step is one list operation. Which fields are used depends on Op.
type Step struct {
	Op     string  `toml:"op" yaml:"op"`
	Value  int64   `toml:"value" yaml:"value"`
	Values []int64 `toml:"values" yaml:"values"`
	// At counts steps from the before-first position.
	At    int `toml:"at" yaml:"at"`
	Count int `toml:"count" yaml:"count"`
}

// loadScenario decodes a TOML or YAML scenario file.
func loadScenario(path string) (*Scenario, error) {
	var s Scenario
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownFormat, path)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return &s, nil
}

// execute builds the scenario's list and applies every step.
func (s *Scenario) execute(log *logrus.Entry) (*forwardlist.List[int64], error) {
	l, err := forwardlist.New[int64](forwardlist.WithLimit(s.Limit))
	if err != nil {
		return nil, err
	}
	if err := l.Assign(s.Values...); err != nil {
		return nil, err
	}

	for i, step := range s.Steps {
		if err := apply(l, step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		log.WithFields(logrus.Fields{
			"event_type": "step_applied",
			"scenario":   s.Name,
			"step":       i,
			"op":         step.Op,
			"len":        l.Len(),
		}).Debug("applied step")
	}
	return l, nil
}

func lessInt64(a, b int64) bool { return a < b }

func equalInt64(a, b int64) bool { return a == b }

func apply(l *forwardlist.List[int64], step Step) error {
	at := l.BeforeBegin().Advance(step.At)

	switch step.Op {
	case "push_front":
		return l.PushFront(step.Value)
	case "push_back":
		return l.PushBack(step.Value)
	case "pop_front":
		_, err := l.PopFront()
		return err
	case "pop_back":
		_, err := l.PopBack()
		return err
	case "insert_after":
		if at.IsEnd() {
			return fmt.Errorf("position %d is past the end", step.At)
		}
		_, err := l.InsertAfterValues(at, step.Values...)
		return err
	case "erase_after":
		l.EraseAfter(at, at.Advance(step.Count+1))
	case "assign":
		return l.Assign(step.Values...)
	case "splice":
		if at.IsEnd() {
			return fmt.Errorf("position %d is past the end", step.At)
		}
		l.SpliceList(at, forwardlist.Of(step.Values...))
	case "merge":
		l.Merge(forwardlist.Of(step.Values...), lessInt64)
	case "sort":
		l.Sort(lessInt64)
	case "sort_desc":
		l.Sort(func(a, b int64) bool { return a > b })
	case "unique":
		l.Unique(equalInt64)
	case "remove":
		l.Remove(step.Value, equalInt64)
	case "remove_below":
		l.RemoveIf(func(v int64) bool { return v < step.Value })
	case "reverse":
		l.Reverse()
	case "resize":
		return l.Resize(step.Count)
	case "clear":
		l.Clear()
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, step.Op)
	}
	return nil
}
