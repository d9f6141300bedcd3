// Package delivery contains the Delivery aggregate and its supporting value
// objects: the Status lifecycle state machine, and the RouteInfo/Estimate
// composite produced by route estimation.
//
// The aggregate owns every status transition. Transition legality lives in a
// single place (the Status transition methods) rather than in independent
// setters, so an illegal event always fails with an InvalidTransitionError
// and leaves the record untouched.
package delivery
