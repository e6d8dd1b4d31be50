// Package recorder writes every command the bridge sends to InfluxDB.
package recorder

import (
	"log"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go"
	"github.com/influxdata/influxdb-client-go/api"
	"github.com/influxdata/influxdb-client-go/api/write"
	"github.com/w1xm/rc_bridge/transport"
	"github.com/w1xm/rc_bridge/wire"
)

const Measurement = "rc.command"

type PointWriter interface {
	WritePoint(p *write.Point)
}

// Recorder is a Transport that forwards to another Transport and records a
// point for every line it was asked to send, successful or not.
type Recorder struct {
	next transport.Transport
	w    PointWriter
}

func New(next transport.Transport, w PointWriter) *Recorder {
	return &Recorder{next: next, w: w}
}

func (r *Recorder) Send(line string) error {
	err := r.next.Send(line)
	cmd, perr := wire.Parse(line)
	if perr != nil {
		log.Printf("recording: %v", perr)
		return err
	}
	tags := map[string]string{"channel": "reset"}
	fields := map[string]interface{}{"ok": err == nil}
	if !cmd.Reset {
		tags["channel"] = strconv.Itoa(int(cmd.Channel))
		fields["value"] = int(cmd.Value)
	}
	r.w.WritePoint(influxdb2.NewPoint(Measurement, tags, fields, time.Now()))
	return err
}

// Client is a non-blocking InfluxDB writer.
type Client struct {
	client influxdb2.Client
	api.WriteApi
}

// Dial creates the client. Writes are batched in the background and write
// errors are logged.
func Dial(server, token, org, bucket string) *Client {
	client := influxdb2.NewClient(server, token)
	writeApi := client.WriteApi(org, bucket)
	go func() {
		for err := range writeApi.Errors() {
			log.Printf("write error: %v", err)
		}
	}()
	log.Printf("recording commands to %s (%s/%s)", server, org, bucket)
	return &Client{client: client, WriteApi: writeApi}
}

// Close flushes pending points and closes the client.
func (c *Client) Close() {
	c.WriteApi.Flush()
	c.WriteApi.Close()
	c.client.Close()
}
