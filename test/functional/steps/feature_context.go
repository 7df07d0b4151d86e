package steps

import (
	"context"

	"sensor-simulator/internal/simulator/usecases"
	"sensor-simulator/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	sandbox        *driver.SandboxDriver
	baseURL        string
	response       *resty.Response
	existingID     string
	summary        usecases.Summary
	simulationErr  error
	preferExisting bool
	require        *require.Assertions
	t              godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Sandbox steps
	ctx.Given(`^a running sandbox$`, fc.aRunningSandbox)
	ctx.Given(`^an unreachable sensor api$`, fc.anUnreachableSensorAPI)
	ctx.Given(`^the sandbox already has a sensor "([^"]*)" of type "([^"]*)"$`, fc.theSandboxAlreadyHasASensor)
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.When(`^I register the sensor "([^"]*)" of type "([^"]*)" at "([^"]*)"$`, fc.iRegisterTheSensor)
	ctx.When(`^the inactivity check runs$`, fc.theInactivityCheckRuns)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Simulator steps
	ctx.Given(`^the simulator prefers existing sensors$`, fc.theSimulatorPrefersExistingSensors)
	ctx.When(`^the simulator runs sensor "([^"]*)" of type "([^"]*)" for (\d+)ms every (\d+)ms$`, fc.theSimulatorRunsSensor)
	ctx.Then(`^the simulation should stop with reason "([^"]*)"$`, fc.theSimulationShouldStopWithReason)
	ctx.Then(`^the simulation should fail$`, fc.theSimulationShouldFail)
	ctx.Then(`^the simulation should report (\d+) readings$`, fc.theSimulationShouldReportReadings)
	ctx.Then(`^the simulation should report at least (\d+) readings$`, fc.theSimulationShouldReportAtLeastReadings)
	ctx.Then(`^the simulation should use the existing sensor$`, fc.theSimulationShouldUseTheExistingSensor)

	// Assertions against the stored data
	ctx.Then(`^the sandbox should list (\d+) sensors? named "([^"]*)"$`, fc.theSandboxShouldListSensorsNamed)
	ctx.Then(`^the sensor "([^"]*)" should be computed as "([^"]*)"$`, fc.theSensorShouldBeComputedAs)
	ctx.Then(`^the sensor "([^"]*)" should have status "([^"]*)"$`, fc.theSensorShouldHaveStatus)
	ctx.Then(`^the sandbox should hold every reported reading for "([^"]*)"$`, fc.theSandboxShouldHoldEveryReportedReading)
	ctx.Then(`^every reading of "([^"]*)" should be within ([\d.]+) of ([\d.]+)$`, fc.everyReadingShouldBeWithin)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.sandbox != nil {
			fc.sandbox.Close()
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.sandbox = nil
	fc.baseURL = ""
	fc.response = nil
	fc.existingID = ""
	fc.summary = usecases.Summary{}
	fc.simulationErr = nil
	fc.preferExisting = false
}
