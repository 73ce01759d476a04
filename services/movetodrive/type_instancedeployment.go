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
	"github.com/BrunoReboul/movetodrive/utilities/gcf"
	"github.com/BrunoReboul/movetodrive/utilities/imt"
)

// Files delivered with the function source code
const (
	PathToFunctionCode  = "./serverless_function_source_code/"
	SettingsFileName    = "settings.yaml"
	CredentialsFileName = "config.json"
)

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core struct {
		EnvironmentName string `yaml:"environmentName" valid:"isNotZeroValue"`
		InstanceName    string `yaml:"instanceName" valid:"isNotZeroValue"`
		ServiceName     string `yaml:"serviceName" valid:"isNotZeroValue"`
		ProjectID       string `yaml:"projectID"`
	}
	Settings struct {
		Service struct {
			GCF gcf.Parameters
		}
		Instance struct {
			Pipeline struct {
				EnableTransform        bool   `yaml:"enableTransform"`
				SizeSkipThresholdBytes *int64 `yaml:"sizeSkipThresholdBytes,omitempty"`
			}
			IMT struct {
				CommandName string `yaml:"commandName" valid:"isNotZeroValue"`
			}
			GDR struct {
				MimeType        string `yaml:"mimeType" valid:"isImageMimeType"`
				ImpersonateUser string `yaml:"impersonateUser,omitempty"`
			}
			GPS struct {
				NotificationTopicName string `yaml:"notificationTopicName,omitempty"`
			}
		}
	}
}

// Credentials service account key and destination folder, config.json
type Credentials struct {
	ClientEmail string `json:"client_email" valid:"isNotZeroValue"`
	PrivateKey  string `json:"private_key" valid:"isNotZeroValue"`
	DriveFolder string `json:"drive_folder" valid:"isNotZeroValue"`
}

// NewInstanceDeployment create deployment structure with default settings set
func NewInstanceDeployment() *InstanceDeployment {
	var instanceDeployment InstanceDeployment
	instanceDeployment.Core.ServiceName = "movetodrive"
	instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = 600
	instanceDeployment.Settings.Instance.IMT.CommandName = imt.DefaultCommandName
	instanceDeployment.Settings.Instance.GDR.MimeType = "image/jpeg"
	return &instanceDeployment
}
