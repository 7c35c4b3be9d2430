package envout

import (
	"encoding/json"
	"errors"

	digest "github.com/opencontainers/go-digest"
	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/sirupsen/logrus"
)

// Layer names used in DecodeError.
const (
	reportLayer = "inspect report"
	configLayer = "image config"
)

// Report is the subset of the tool's top-level JSON output this program
// consumes. Config carries a second JSON document as a string; a pointer so
// that an absent key is distinguishable from an empty one.
type Report struct {
	Config          *string       `json:"Config"`
	FromImageDigest digest.Digest `json:"FromImageDigest"`
}

// ImageConfig is the inner document decoded from Report.Config. The nested
// "config" object is the OCI image configuration; a pointer so that an
// absent key is detected rather than silently zero-valued.
type ImageConfig struct {
	Architecture string                 `json:"architecture"`
	OS           string                 `json:"os"`
	Config       *imgspecv1.ImageConfig `json:"config"`
}

// Decode runs both decode passes over the raw tool output: the outer
// inspect report, then its Config field as a second JSON document.
func Decode(raw []byte) (*ImageConfig, error) {
	report := Report{}
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, &DecodeError{Layer: reportLayer, Err: err}
	}
	if report.Config == nil {
		return nil, &DecodeError{Layer: reportLayer, Err: errors.New(`no "Config" key`)}
	}
	if report.FromImageDigest != "" {
		logrus.Debugf("Inspected image digest %s", report.FromImageDigest)
	}

	config := ImageConfig{}
	if err := json.Unmarshal([]byte(*report.Config), &config); err != nil {
		return nil, &DecodeError{Layer: configLayer, Err: err}
	}
	if config.Config == nil {
		return nil, &DecodeError{Layer: configLayer, Err: errors.New(`no "config" key`)}
	}
	return &config, nil
}

// Env returns the image's declared environment, in its original order.
// A config whose Env key is absent (or null) is malformed; an explicitly
// empty array is valid and returns an empty slice.
func (c *ImageConfig) Env() ([]string, error) {
	if c.Config.Env == nil {
		return nil, &DecodeError{Layer: configLayer, Err: errors.New(`no "Env" key`)}
	}
	return c.Config.Env, nil
}

// WorkingDir returns the image's configured working directory, possibly empty.
func (c *ImageConfig) WorkingDir() string {
	return c.Config.WorkingDir
}
