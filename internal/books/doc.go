// Package books loads the book dataset bookgrid displays.
//
// # Overview
//
// A dataset is fetched once per initialization. Two sources implement
// Fetcher:
//
//   - Client: a single unauthenticated GET against an HTTP endpoint
//   - FileSource: a local JSON or JSONC file, useful offline and in tests
//
// NewSource picks one from a string: http(s) URLs get a Client, anything
// else is a file path.
//
// # Payload
//
// The payload is a JSON array of objects, or an object with a "books" array.
// Each object is normalized into a Book with exactly four fields: title,
// author, year and isbn. Absent, null or empty fields become Placeholder
// ("N/A"). Numbers are decoded as json.Number so a year keeps the exact
// text it was sent with.
//
// # Error Handling
//
// All errors are wrapped with context:
//
//   - "execute request: ..." for transport failures
//   - "api /api/v1/books returned status 503: unexpected status" for non-2xx
//     responses (errors.Is(err, ErrUnexpectedStatus))
//   - "decode response: ..." for malformed JSON
//
// The client never retries. Retrying is a user action handled by the caller.
//
// # Timeouts
//
// By default requests have no timeout; callers bound them with the context
// or WithTimeout.
package books
