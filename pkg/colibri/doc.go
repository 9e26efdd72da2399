// Package colibri реализует элементы управляющего протокола
// видеомоста: дескриптор web-socket транспорта данных и colibri2
// элемент media с дескрипторами кодеков и RTP header extensions.
package colibri
