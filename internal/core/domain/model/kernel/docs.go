// Package kernel contains the shared value objects of the domain model.
//
// The kernel provides the building blocks every other domain package depends on:
//
//   - UUID: identity for aggregates and entities, wrapping github.com/google/uuid
//   - Money: monetary amounts held as integer cents, with rounding applied only
//     at construction and percentage boundaries
//   - TimeOfDay: a wall-clock minute of day parsed from "HH:mm" strings, used by
//     operating hours and item serving windows
//   - ConstructorGuard: the defensive pattern that forces construction through
//     factory functions
//
// All kernel types are immutable value objects and safe for concurrent use.
package kernel
