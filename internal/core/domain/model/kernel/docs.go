// Package kernel provides the value objects shared by the logistics domain model.
//
// The package includes:
//   - UUID: an identifier value object wrapping github.com/google/uuid, used to label
//     a dispatch session
//   - Location: the delivery destination (city and postoffice number)
//   - Price: a non-negative exact decimal amount in UAH
//
// All value objects are immutable and carry a constructor guard so that zero values
// are rejected by Validate.
package kernel
