// Package environment names the runtime environments the service knows about.
package environment
