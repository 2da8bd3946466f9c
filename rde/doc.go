/*
Package rde implements the client side of the two interactions rpp has with RDE routing
controllers: finding a controller via a TXT record published under the reverse DNS path
of a prefix, and pushing inbound routing preferences to it with a SETINPREF command over
a short-lived TCP connection.
*/
package rde
