// Package carrier holds the carrier selection model: live rate quotes,
// package descriptors handed to the rate provider, legacy lane table
// entries, and the selection strategy enum.
package carrier
