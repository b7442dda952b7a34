// Package types provides shared data structures for the Math for Programmers backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: one callable operation of a service
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Service discovery by intent
//   - WSMessage: WebSocket widget state events
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"result": classification},
//	}
package types
