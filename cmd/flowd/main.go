/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package main is a small service that holds one compiled flow and
// answers evaluation requests over HTTP, WebSockets, and (optionally)
// MQTT.
//
//	flowd -f pricing.yaml -httpd :8080
//	flowd -f pricing.yaml -reload '0 * * * * * *'
//
// The service only compiles graphs and evaluates arithmetic
// expressions.  Running decision tables is the downstream engine's
// job.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorhill/cronexpr"
)

func main() {

	var (
		filename  = flag.String("f", "", "Flow definition filename (default: the demo flow)")
		httpdAddr = flag.String("httpd", ":8080", "Address for the HTTP (and WebSocket) listener")
		check     = flag.Bool("check", false, "Syntax-check function sources when compiling")
		storeFile = flag.String("store", "", "Optional Bolt file for compiled graphs")
		graphId   = flag.String("id", "flow", "Graph id for -store")
		reload    = flag.String("reload", "", "Optional cron expression for re-reading the flow file")

		mqBroker   = flag.String("mq", "", "Optional MQTT broker (e.g. tcp://localhost:1883)")
		mqClientId = flag.String("mq-client-id", "flowd", "MQTT client id")
		mqIn       = flag.String("mq-in", "flowd/requests", "MQTT request topic")
		mqOut      = flag.String("mq-out", "flowd/responses", "MQTT response topic")

		help = flag.Bool("h", false, "Get usage")
	)

	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := NewService(*filename, *check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *storeFile != "" {
		if err = s.OpenStore(*storeFile, *graphId); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer s.CloseStore()
	}

	if err = s.Compile(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *reload != "" {
		c, err := cronexpr.Parse(*reload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: bad -reload: %v\n", err)
			os.Exit(1)
		}
		go func() {
			for {
				next := c.Next(time.Now())
				if next.IsZero() {
					log.Printf("reload schedule exhausted")
					return
				}
				select {
				case <-ctx.Done():
					return
				case <-time.After(time.Until(next)):
				}
				if err := s.Compile(ctx); err != nil {
					// Keep serving the previous graph.
					log.Printf("reload error: %v", err)
				} else {
					log.Printf("reloaded flow")
				}
			}
		}()
	}

	if *mqBroker != "" {
		m := &MQTTCoupling{
			Broker:   *mqBroker,
			ClientId: *mqClientId,
			InTopic:  *mqIn,
			OutTopic: *mqOut,
		}
		if err = m.Start(ctx, s); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer m.Stop()
	}

	log.Printf("flowd listening on %s", *httpdAddr)
	if err = s.HTTPD(ctx, *httpdAddr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
