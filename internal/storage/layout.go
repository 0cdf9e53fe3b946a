// Package storage lays out and writes the SS-MIX2 directory tree: one
// bucketed path per patient per day per data type, and one file per
// message within that bucket.
//
// Grounded on original_source/ssmixtwins/src/file_making/basics.py
// (generate_file_path, generate_file_name, save_message_to_file).
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DataType names one of the SS-MIX2 storage buckets (the lv5 directory
// name and the filename's data-type component) using the standardized
// category codes the profile defines, not an invented label per message
// type — every ADT trigger event shares one bucket, per the original's
// file_making/adt_00.py.
type DataType string

const (
	DataTypeADT     DataType = "ADT-00"
	DataTypeOrder   DataType = "OMP-01"
	DataTypeLab     DataType = "OML-11"
	DataTypeProblem DataType = "PPR-01"
)

// ConditionFlag is the filename's trailing digit: 0 healthy/normal,
// 1 abnormal/significant, 2 undetermined — mirrored from the original's
// three-way condition flag on every written file name.
type ConditionFlag int

const (
	ConditionNormal      ConditionFlag = 0
	ConditionAbnormal    ConditionFlag = 1
	ConditionUndetermined ConditionFlag = 2
)

// RootDirName is the fixed top-level directory every output tree is rooted
// at, under the caller's chosen output directory.
const RootDirName = "ssmixtwins"

// FilePath computes the full bucketed directory a message file belongs
// under: <outputDir>/ssmixtwins/lv1/lv2/lv3/lv4/lv5.
//
// lv1/lv2 split the first six characters of the patient ID into two
// three-character buckets so that no single directory ends up holding
// every patient in a large run; lv3 is the full patient ID; lv4 is the
// message's service date; lv5 is the data type.
func FilePath(outputDir, patientID, date string, dataType DataType) (string, error) {
	if len(patientID) < 6 {
		return "", fmt.Errorf("patient ID %q is too short to bucket (need at least 6 characters)", patientID)
	}
	lv1 := patientID[0:3]
	lv2 := patientID[3:6]
	lv3 := patientID
	lv4 := date
	lv5 := string(dataType)
	return filepath.Join(outputDir, RootDirName, lv1, lv2, lv3, lv4, lv5), nil
}

// FileName computes the extensionless file name for one message.
//
// Shape: {patient_id}_{date}_{data_type}_{requester_order_number}_{message_time}_{department_code}_{condition_flag}
func FileName(patientID, date string, dataType DataType, requesterOrderNumber15 string, messageTimeFFF string, departmentCode string, condition ConditionFlag) string {
	parts := []string{
		patientID,
		date,
		string(dataType),
		requesterOrderNumber15,
		messageTimeFFF,
		departmentCode,
		fmt.Sprintf("%d", condition),
	}
	return strings.Join(parts, "_")
}
