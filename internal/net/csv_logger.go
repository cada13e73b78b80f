package net

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/neuron"
)

// CSVLogger records every cost report as a CSV row together with the value
// of each trainable parameter at that step:
//
//	step,cost,time_seconds,n0.w0,n0.w1,n0.bias,...
//
// The parameter columns come from the model passed to OnTrainBegin. In
// append mode the header is only written to an empty file.
type CSVLogger struct {
	BaseCallback
	Filename string
	Append   bool

	file   *os.File
	writer *csv.Writer
	params []neuron.Param
	start  time.Time
}

func NewCSVLogger(filename string, append bool) *CSVLogger {
	return &CSVLogger{
		Filename: filename,
		Append:   append,
	}
}

func (c *CSVLogger) OnTrainBegin(m neuron.Model) {
	mode := os.O_CREATE | os.O_WRONLY
	if c.Append {
		mode |= os.O_APPEND
	} else {
		mode |= os.O_TRUNC
	}

	file, err := os.OpenFile(c.Filename, mode, 0o644)
	if err != nil {
		log.Printf("CSVLogger: failed to open file %s: %v", c.Filename, err)
		return
	}
	c.file = file
	c.writer = csv.NewWriter(file)
	c.start = time.Now()
	c.params = nil
	if m != nil {
		c.params = m.Params()
	}

	info, err := file.Stat()
	if err != nil || (c.Append && info.Size() > 0) {
		return
	}
	header := []string{"step", "cost", "time_seconds"}
	for _, p := range c.params {
		header = append(header, p.String())
	}
	c.write(header)
}

func (c *CSVLogger) OnStepEnd(step int, cost float64, m neuron.Model) {
	if c.writer == nil {
		return
	}

	record := make([]string, 0, 3+len(c.params))
	record = append(record,
		strconv.Itoa(step),
		strconv.FormatFloat(cost, 'g', -1, 64),
		strconv.FormatFloat(time.Since(c.start).Seconds(), 'f', 2, 64),
	)
	if m != nil {
		for _, p := range c.params {
			record = append(record, strconv.FormatFloat(m.Param(p), 'g', -1, 64))
		}
	}
	c.write(record)
}

func (c *CSVLogger) OnTrainEnd(neuron.Model) {
	if c.file == nil {
		return
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		log.Printf("CSVLogger: failed to flush %s: %v", c.Filename, err)
	}
	if err := c.file.Close(); err != nil {
		log.Printf("CSVLogger: failed to close %s: %v", c.Filename, err)
	}
	c.file = nil
	c.writer = nil
}

// write emits one row and flushes it.
func (c *CSVLogger) write(record []string) {
	if err := c.writer.Write(record); err != nil {
		log.Printf("CSVLogger: failed to write record: %v", err)
		return
	}
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		log.Printf("CSVLogger: failed to flush %s: %v", c.Filename, err)
	}
}
