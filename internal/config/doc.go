// Package config loads YAML settings for the renderers and the display
// backend, and holds named example systems.
//
// A config file only needs the keys it overrides:
//
//	system:
//	  num: [1]
//	  den: [1, 0.4, 1]
//	time:
//	  inversion_method: talbot
//	display:
//	  backend: image
//	  format: svg
package config
