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
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/movetodrive/utilities/aut"
	"github.com/BrunoReboul/movetodrive/utilities/gcf"
	"github.com/BrunoReboul/movetodrive/utilities/gcs"
	"github.com/BrunoReboul/movetodrive/utilities/gdr"
	"github.com/BrunoReboul/movetodrive/utilities/gps"
	"github.com/BrunoReboul/movetodrive/utilities/imt"
	"github.com/BrunoReboul/movetodrive/utilities/logging"
	"github.com/google/uuid"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"google.golang.org/api/drive/v3"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx                 context.Context
	environment         string
	initFailed          bool
	instanceName        string
	microserviceName    string
	pipeline            *Pipeline
	retryTimeOutSeconds int64
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx
	global.initFailed = false

	initID := fmt.Sprintf("%v", uuid.New())
	instanceDeployment, credentials, err := loadConfiguration(PathToFunctionCode+SettingsFileName, PathToFunctionCode+CredentialsFileName)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: err.Error(),
			InitID:      initID,
		})
		global.initFailed = true
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           initID,
	})

	global.retryTimeOutSeconds = instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds

	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		global.logInitFailed(initID, fmt.Sprintf("storage.NewClient(ctx) %v", err))
		return err
	}

	var pipeline Pipeline
	pipeline.Config = newPipelineConfig(instanceDeployment, credentials)
	pipeline.ObjectStore = gcs.NewObjectStore(storageClient)
	pipeline.Transformer = &imt.Flipper{CommandName: instanceDeployment.Settings.Instance.IMT.CommandName}
	pipeline.Authorizer = &aut.JWTAuthorizer{
		ClientEmail: credentials.ClientEmail,
		PrivateKey:  credentials.PrivateKey,
		Scopes:      []string{drive.DriveScope},
		Subject:     instanceDeployment.Settings.Instance.GDR.ImpersonateUser,
	}
	pipeline.Uploader = &gdr.Uploader{}
	pipeline.LogEntry = logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
	}

	if topicName := instanceDeployment.Settings.Instance.GPS.NotificationTopicName; topicName != "" {
		pubsubClient, err := pubsub.NewClient(ctx, instanceDeployment.Core.ProjectID)
		if err != nil {
			global.logInitFailed(initID, fmt.Sprintf("pubsub.NewClient(ctx, %s) %v", instanceDeployment.Core.ProjectID, err))
			return err
		}
		pipeline.Notifier = gps.NewPublisher(pubsubClient, topicName)
	}
	global.pipeline = &pipeline
	return nil
}

func (global *Global) logInitFailed(initID string, description string) {
	global.initFailed = true
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      description,
		InitID:           initID,
	})
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event, global *Global) error {
	ok, meta, reason, err := gcf.InitialRetryCheck(ctxEvent, global.initFailed || global.pipeline == nil, global.retryTimeOutSeconds)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          reason,
			Description:      err.Error(),
			Bucket:           gcsEvent.Bucket,
			ObjectName:       gcsEvent.Name,
		})
		return err
	}

	now := time.Now()
	d := now.Sub(meta.Timestamp)
	if !ok {
		log.Println(logging.Entry{
			MicroserviceName:          global.microserviceName,
			InstanceName:              global.instanceName,
			Environment:               global.environment,
			Severity:                  "CRITICAL",
			Message:                   "noretry",
			Description:               reason,
			TriggeringEventID:         meta.EventID,
			TriggeringEventType:       meta.EventType,
			TriggeringEventTimestamp:  &meta.Timestamp,
			TriggeringEventAgeSeconds: d.Seconds(),
			Now:                       &now,
			Bucket:                    gcsEvent.Bucket,
			ObjectName:                gcsEvent.Name,
		})
		return nil
	}
	log.Println(logging.Entry{
		MicroserviceName:          global.microserviceName,
		InstanceName:              global.instanceName,
		Environment:               global.environment,
		Severity:                  "NOTICE",
		Message:                   "start",
		TriggeringEventID:         meta.EventID,
		TriggeringEventType:       meta.EventType,
		TriggeringEventTimestamp:  &meta.Timestamp,
		TriggeringEventAgeSeconds: d.Seconds(),
		Now:                       &now,
		Bucket:                    gcsEvent.Bucket,
		ObjectName:                gcsEvent.Name,
	})

	objectEvent, err := gcs.NewObjectEvent(gcsEvent, meta.EventType)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName:  global.microserviceName,
			InstanceName:      global.instanceName,
			Environment:       global.environment,
			Severity:          "CRITICAL",
			Message:           "noretry",
			Description:       fmt.Sprintf("gcs.NewObjectEvent %v", err),
			TriggeringEventID: meta.EventID,
			Bucket:            gcsEvent.Bucket,
			ObjectName:        gcsEvent.Name,
		})
		return nil
	}

	outcome := global.pipeline.Run(ctxEvent, meta.EventID, objectEvent)

	now = time.Now()
	latency := now.Sub(meta.Timestamp)
	severity := "NOTICE"
	description := fmt.Sprintf("decision %s upload %s", outcome.Decision, outcome.Upload.Status)
	if err := outcome.failure(); err != nil {
		severity = "WARNING"
		description = fmt.Sprintf("%s %v", description, err)
	}
	log.Println(logging.Entry{
		MicroserviceName:  global.microserviceName,
		InstanceName:      global.instanceName,
		Environment:       global.environment,
		Severity:          severity,
		Message:           "finish",
		Description:       description,
		Now:               &now,
		TriggeringEventID: meta.EventID,
		Bucket:            gcsEvent.Bucket,
		ObjectName:        gcsEvent.Name,
		DocumentID:        outcome.Upload.DocumentID,
		LatencySeconds:    latency.Seconds(),
	})
	return nil
}
