// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package predict is the client for the external model-serving endpoint.

The endpoint hosts a gradient-boosting classifier trained on BRFSS
survey data. It receives the ten-feature payload as JSON and answers
with the positive-class probability:

	{"probability": 0.42}

The client treats any 2xx status with a JSON body as success and any
other status as a uniform failure. There is no retry; requests carry a
10 second timeout and honor context cancellation.

	predictor := predict.NewClient(cfg.ModelURL)
	result, err := predictor.Predict(ctx, submission.Features)

Client is an interface so handler tests can substitute a stub.
*/
package predict
