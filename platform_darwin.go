//go:build darwin

package main

import _ "github.com/mj1618/spaces-cli/internal/platform/darwin"
