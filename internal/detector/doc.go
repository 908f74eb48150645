// Package detector samples a binary motion sensor on a fixed interval
// and dispatches edge events to subscribed handlers. Handler failures
// are isolated at the dispatch boundary so one misbehaving subscriber
// can never stop the polling loop.
package detector
