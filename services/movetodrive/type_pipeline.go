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

package movetodrive

import (
	"context"

	"github.com/BrunoReboul/movetodrive/utilities/gdr"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
	"golang.org/x/oauth2"
)

// ObjectStore stages and deletes bucket objects
type ObjectStore interface {
	Download(ctx context.Context, bucketName string, objectName string, localPath string) error
	Delete(ctx context.Context, bucketName string, objectName string) error
}

// Transformer modifies the staged image in place
type Transformer interface {
	Transform(ctx context.Context, localPath string) error
}

// Authorizer obtains a Drive credential
type Authorizer interface {
	Authorize(ctx context.Context) (oauth2.TokenSource, error)
}

// Uploader creates the Drive document
type Uploader interface {
	Upload(ctx context.Context, tokenSource oauth2.TokenSource, localPath string, document gdr.Document) (string, error)
}

// Notifier publishes the outcome report
type Notifier interface {
	Publish(ctx context.Context, data []byte) (string, error)
}

// PipelineConfig covers both observed variants: change stream without transform,
// finalize with transform and a size threshold
type PipelineConfig struct {
	EnableTransform bool
	// SizeSkipThreshold nil means never skip
	SizeSkipThreshold *int64
	// TempDir empty means os.TempDir()
	TempDir  string
	FolderID string
	MimeType string
}

// Pipeline is built once at cold start and is read only afterwards, Run is safe to call for each invocation
type Pipeline struct {
	Config      PipelineConfig
	ObjectStore ObjectStore
	Transformer Transformer
	Authorizer  Authorizer
	Uploader    Uploader
	// Notifier is optional
	Notifier Notifier
	// LogEntry carries the fields common to all log entries: microservice, instance, environment
	LogEntry logging.Entry
}
