// Package domain models the monthly global land-surface temperature dataset
// and the transformation that prepares it for the heat map.
//
// # Data Source
//
// The dataset is published by freeCodeCamp as a single JSON document:
//
//	{
//	  "baseTemperature": 8.66,
//	  "monthlyVariance": [
//	    {"year": 1753, "month": 1, "variance": -1.366},
//	    ...
//	  ]
//	}
//
// baseTemperature is the reference average in °C. Each monthlyVariance entry
// is the deviation of one calendar month's average from that reference.
// Months are 1-based (1 = January).
//
// # Absolute Temperature
//
// The absolute temperature of a record is baseTemperature + variance, computed
// with plain float64 addition. No rounding is applied at this stage; display
// rounding (three decimals in the tooltip, one in the legend) happens in the
// renderer.
//
// # Color Buckets
//
// Records are binned by absolute temperature into a fixed seven-entry
// [ColorScale]. Thresholds are strictly descending and the comparison is
// strict: a value equal to a threshold falls into the next lower bucket.
//
//	  > 12.8 °C  bucket 0  #FF0030
//	  > 11.1 °C  bucket 1  #FD5405
//	  >  9.4 °C  bucket 2  #FCCF05
//	  >  7.9 °C  bucket 3  #E6FD06
//	  >  6.1 °C  bucket 4  #03FE26
//	  >  4.7 °C  bucket 5  #06DBD6
//	  otherwise  bucket 6  #051CFD
//
// The last threshold (2.8 °C) is only used as a legend label; bucket 6 is the
// catch-all for every value at or below 4.7 °C.
package domain
