// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"github.com/cheihkseck32-hue/solo-leveling-system/services"
)

var svc *services.Service

// Init wires the core service into the handler package. Must be called
// before any route is registered.
func Init(s *services.Service) {
	svc = s
}
