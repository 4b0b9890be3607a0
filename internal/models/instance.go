package models

import "time"

// VSInstance is one Visual Studio installation as reported by the
// vswhere JSON output. Only the fields needed for instance selection
// and diagnostics are decoded.
type VSInstance struct {
	InstanceID          string    `json:"instanceId"`
	DisplayName         string    `json:"displayName"`
	InstallationPath    string    `json:"installationPath"`
	InstallationVersion string    `json:"installationVersion"`
	InstallDate         time.Time `json:"installDate"`
	ProductID           string    `json:"productId"`
	IsPrerelease        bool      `json:"isPrerelease"`
}
