// Package kernel contains shared value objects used across the domain model.
// These are immutable, validated building blocks: UUID identifiers and
// geographic Coordinates. The zero value of every kernel type is invalid;
// instances must be created through the provided constructors.
package kernel
