/*
Package gconf stores the configuration singletons of the extensions.

Each extension owns one configuration object, kept under the "_c:<pkg>" key.
It is written once from the genesis options by InitConfig and read by the
handlers with Load at the beginning of every operation.
*/
package gconf
