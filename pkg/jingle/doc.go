// Package jingle реализует элементы медиа-переговоров Jingle RTP сессий:
// source (Source-Specific Media Attributes, ssma), его параметры,
// группы источников ssrc-group (FID/SIM/FEC),
// дескрипторы payload-type (XEP-0167) и rtp-hdrext (XEP-0294), а также
// реестр заявленных источников с сопоставлением входящих RTP пакетов.
package jingle
