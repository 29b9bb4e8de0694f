// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output, log level configuration,
// component-scoped loggers and run-scoped fields (run id, problem name).
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get(logger.ComponentRunner).WithRunID(runID)
//	log.Info("problem finished", logger.Fields(logger.FieldProblem, "grouping", logger.FieldElements, 7))
package logger
