/*
Package utils contains the decorators shared by every instruction:
recovery from panics, logging, metrics, opcode tagging and savepoints.
*/
package utils
