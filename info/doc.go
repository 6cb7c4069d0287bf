// Package info serves build metadata, health probes and the OpenAPI document
// next to the document API.
//
// The viewer at /docs can be Stoplight Elements (default), Scalar, SwaggerUI
// or Redoc; select one with WithUIType or ParseUIType. Probe failures use the
// same failure envelope as the controllers.
package info
