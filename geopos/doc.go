// Package geopos computes the four canonical inertial-flow geometric
// projections (longitude, latitude, lon+lat, lon-lat) over a set of node
// positions, used to pick source/sink endpoint sets for inertialflow.
package geopos
