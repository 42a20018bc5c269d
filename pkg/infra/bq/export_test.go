package bq

var EncodeRow = encodeRow
