// Package commands provides the command line interface of the file cipher
// client.
//
// It implements commands for:
//   - encryption
//   - decryption
//   - querying the server version
//
// Every command talks to the server through an [adapter.ServerAdapter]; the
// package itself holds no cryptography.
package commands
