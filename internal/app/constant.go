package app

const logPrefixNew = "internal.app.New"
