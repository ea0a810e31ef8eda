// Package domain contains the core business entities of the directory
// service, independent of any specific infrastructure or delivery mechanism.
package domain
