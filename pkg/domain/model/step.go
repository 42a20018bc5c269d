package model

import (
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

// Step names one unit of the provisioning workflow.
type Step string

const (
	StepDuplicateTemplate Step = "duplicate-template"
	StepPatchConfig       Step = "patch-config"
	StepUploadScript      Step = "upload-script"
	StepAttachRoute       Step = "attach-route"
	StepInstallWorkflow   Step = "install-workflow"
	StepTriggerWorkflow   Step = "trigger-workflow"
	StepRegisterSite      Step = "register-site"
	StepExportEvent       Step = "export-event"
)

// Policy decides what a failed step does to the whole clone.
type Policy int

const (
	// PolicyFatal aborts the clone and reports the step's error.
	PolicyFatal Policy = iota
	// PolicyBestEffort logs the failure and carries on.
	PolicyBestEffort
)

type StepPolicy map[Step]Policy

// DefaultStepPolicy keeps the installer fatal and the patcher best-effort.
// Route attachment is best-effort: an unattached route still leaves a
// reachable workers.dev script.
var DefaultStepPolicy = StepPolicy{
	StepDuplicateTemplate: PolicyFatal,
	StepPatchConfig:       PolicyBestEffort,
	StepUploadScript:      PolicyFatal,
	StepAttachRoute:       PolicyBestEffort,
	StepInstallWorkflow:   PolicyFatal,
	StepTriggerWorkflow:   PolicyBestEffort,
	StepRegisterSite:      PolicyFatal,
	StepExportEvent:       PolicyBestEffort,
}

// Of returns the policy for step. Unknown steps are fatal.
func (x StepPolicy) Of(step Step) Policy {
	if p, ok := x[step]; ok {
		return p
	}
	return PolicyFatal
}

// StepResult is the explicit outcome of one step.
type StepResult struct {
	Step   Step
	Status types.StepStatus
	Err    error
}

func Succeeded(step Step) StepResult {
	return StepResult{Step: step, Status: types.StepSucceeded}
}

func Failed(step Step, err error) StepResult {
	return StepResult{Step: step, Status: types.StepFailed, Err: err}
}

func Skipped(step Step) StepResult {
	return StepResult{Step: step, Status: types.StepSkipped}
}

func (x StepResult) OK() bool {
	return x.Status != types.StepFailed
}

// StepError is returned when a fatal step fails.
type StepError struct {
	Step Step
	Err  error
}

func (x *StepError) Error() string {
	return string(x.Step) + ": " + x.Err.Error()
}

func (x *StepError) Unwrap() error {
	return x.Err
}
