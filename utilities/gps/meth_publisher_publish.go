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

	"cloud.google.com/go/pubsub"
	"github.com/pkg/errors"
)

// Publish sends one message and waits for the server ID.
// No retry on pubsub publish as already implemented in the GO client
func (publisher *Publisher) Publish(ctx context.Context, data []byte) (string, error) {
	publishResult := publisher.topic.Publish(ctx, &pubsub.Message{Data: data})
	id, err := publishResult.Get(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "publish to %s", publisher.topic.ID())
	}
	return id, nil
}
