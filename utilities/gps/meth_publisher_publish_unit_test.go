// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gps

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
)

func TestUnitPublish(t *testing.T) {
	ctx := context.Background()
	server := pstest.NewServer()
	defer server.Close()
	conn, err := grpc.Dial(server.Addr, grpc.WithInsecure())
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	client, err := pubsub.NewClient(ctx, "my-project", option.WithGRPCConn(conn))
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()
	if _, err = client.CreateTopic(ctx, "movetodrive-reports"); err != nil {
		t.Fatal(err)
	}

	publisher := NewPublisher(client, "movetodrive-reports")
	id, err := publisher.Publish(ctx, []byte(`{"objectName":"cat.jpg"}`))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if id == "" {
		t.Errorf("want a message id")
	}
	messages := server.Messages()
	if len(messages) != 1 {
		t.Fatalf("want 1 message got %d", len(messages))
	}
	if string(messages[0].Data) != `{"objectName":"cat.jpg"}` {
		t.Errorf("unexpected data %s", string(messages[0].Data))
	}

	missing := NewPublisher(client, "does-not-exist")
	if _, err = missing.Publish(ctx, []byte("x")); err == nil {
		t.Errorf("want an error publishing to a missing topic")
	}
}
